package config

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-fold-utils/$GOPACKAGE IServiceConfiguration

type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
