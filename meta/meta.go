// meta/meta.go
package meta

import "time"

// DefaultTarget is the score at or above which a game is won.
const DefaultTarget = 100

// DefaultHoldCap is the largest turn total a computer player aims for.
const DefaultHoldCap = 25

// DefaultTimeLimit is how long a timed game may run before it is cut off.
const DefaultTimeLimit = 60 * time.Second

// DefaultSeriesGames is the number of games in a simulated series when none
// is given.
const DefaultSeriesGames = 10
