//go:generate mockgen -destination=mock_control.go -package=control github.com/apexrobotics/pushback/control Ticker

package control
