package game

// Phase selects which screen and engine is mounted
type Phase int

const (
	PhaseStart Phase = iota
	PhaseToolSelection
	PhasePlanetSelection
	PhaseSpaceTravel
	PhaseMazeGame
	PhaseDebrisCollection
	PhaseEndGame
	PhaseGraveyard
	PhaseRecycling
)

var phaseNames = [...]string{
	PhaseStart:            "start",
	PhaseToolSelection:    "tool-selection",
	PhasePlanetSelection:  "planet-selection",
	PhaseSpaceTravel:      "space-travel",
	PhaseMazeGame:         "maze-game",
	PhaseDebrisCollection: "debris-collection",
	PhaseEndGame:          "end-game",
	PhaseGraveyard:        "graveyard",
	PhaseRecycling:        "recycling",
}

// String returns the string representation of Phase
func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

var validTransitions = map[Phase][]Phase{
	PhaseStart:            {PhaseToolSelection},
	PhaseToolSelection:    {PhasePlanetSelection, PhaseStart},
	PhasePlanetSelection:  {PhaseSpaceTravel, PhaseToolSelection},
	PhaseSpaceTravel:      {PhaseMazeGame},
	PhaseMazeGame:         {PhaseDebrisCollection},
	PhaseDebrisCollection: {PhaseEndGame},
	PhaseEndGame:          {PhaseGraveyard, PhaseRecycling, PhaseStart},
	PhaseGraveyard:        {PhaseStart},
	PhaseRecycling:        {PhaseStart, PhaseEndGame},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, p := range validTransitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
