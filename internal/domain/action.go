package domain

import "strings"

// ActionType identifies a care action a player can perform on an animal.
// The set is closed: every value is listed in AllActionTypes.
type ActionType string

const (
	ActionFeed      ActionType = "feed"
	ActionWalk      ActionType = "walk"
	ActionPlay      ActionType = "play"
	ActionMedical   ActionType = "medical"
	ActionExercise  ActionType = "exercise"
	ActionGroom     ActionType = "groom"
	ActionTrain     ActionType = "train"
	ActionSocialize ActionType = "socialize"
	ActionIdle      ActionType = "idle"
)

// AllActionTypes lists every action in catalog order
var AllActionTypes = []ActionType{
	ActionFeed,
	ActionWalk,
	ActionPlay,
	ActionMedical,
	ActionExercise,
	ActionGroom,
	ActionTrain,
	ActionSocialize,
	ActionIdle,
}

// ParseActionType converts a user supplied name into an ActionType
func ParseActionType(name string) (ActionType, bool) {
	candidate := ActionType(strings.ToLower(strings.TrimSpace(name)))
	for _, t := range AllActionTypes {
		if t == candidate {
			return t, true
		}
	}
	return "", false
}

// PastTense returns the verb used in action result messages
func (t ActionType) PastTense() string {
	switch t {
	case ActionFeed:
		return "fed"
	case ActionWalk:
		return "walked"
	case ActionPlay:
		return "played with"
	case ActionMedical:
		return "treated"
	case ActionExercise:
		return "exercised"
	case ActionGroom:
		return "groomed"
	case ActionTrain:
		return "trained"
	case ActionSocialize:
		return "socialized"
	case ActionIdle:
		return "rested with"
	}
	return string(t)
}
