//go:generate mockgen -destination=mock_hardware.go -package=hardware github.com/apexrobotics/pushback/hardware OperatorFeedback

package hardware
