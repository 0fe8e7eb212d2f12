package models

// WindDirection is one of the 8 compass points
type WindDirection string

const (
	WindN  WindDirection = "N"
	WindNE WindDirection = "NE"
	WindE  WindDirection = "E"
	WindSE WindDirection = "SE"
	WindS  WindDirection = "S"
	WindSW WindDirection = "SW"
	WindW  WindDirection = "W"
	WindNW WindDirection = "NW"
)

// compassBuckets lists the upper bound (exclusive) of each 45° arc in
// ascending order. Anything at or past the last bound wraps back to north.
var compassBuckets = []struct {
	below float64
	dir   WindDirection
}{
	{22.5, WindN},
	{67.5, WindNE},
	{112.5, WindE},
	{157.5, WindSE},
	{202.5, WindS},
	{247.5, WindSW},
	{292.5, WindW},
	{337.5, WindNW},
}

// WindDirectionFromDegrees maps meteorological degrees in [0,360) to a
// compass point. Values outside that range are not normalized: negatives
// land in N via the first bucket and values >= 360 fall through to N.
func WindDirectionFromDegrees(deg float64) WindDirection {
	for _, b := range compassBuckets {
		if deg < b.below {
			return b.dir
		}
	}
	return WindN
}
