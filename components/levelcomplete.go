package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the room clear overlay
type LevelCompleteData struct {
	IsComplete bool
	Won        bool // final room cleared
	Frames     int  // frames the overlay has been shown
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
