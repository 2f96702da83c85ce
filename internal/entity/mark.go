package entity

import (
	"errors"
	"fmt"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

type Mode string

const (
	ModeTwoPlayer    Mode = "two-player"
	ModeSinglePlayer Mode = "single-player"
)

var (
	ErrUnknownMode = errors.New("unknown game mode")
	ErrInvalidMark = errors.New("invalid mark")
)

func ParseMode(raw string) (Mode, error) {
	switch mode := Mode(raw); mode {
	case ModeTwoPlayer, ModeSinglePlayer:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

func (that Mode) WithBot() bool {
	return that == ModeSinglePlayer
}
