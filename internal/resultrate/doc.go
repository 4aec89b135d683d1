// Package resultrate computes win-rate-like scores from win/loss/tie
// records under five fixed tie-handling strategies.
//
// Each strategy defines a (numerator, denominator) transform of
// (wins, losses, ties); the rate is their quotient, 0 when the
// denominator is 0. The package also exposes the display labels and
// formula snippets the dashboard's strategy selector renders.
package resultrate
