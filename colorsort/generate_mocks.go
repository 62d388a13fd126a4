//go:generate mockgen -destination=mock_scorer.go -package=colorsort github.com/apexrobotics/pushback/colorsort Scorer

package colorsort
