package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrAlreadyQueued    GameError = "player is already waiting in a queue"
	ErrAlreadyInGame    GameError = "player is already in an active game"
	ErrAlreadySubmitted GameError = "player already played a card this round"
	ErrNotInSession     GameError = "player is not part of this game"
	ErrIsJudge          GameError = "the judge does not play a card"
	ErrNotJudge         GameError = "only the judge may pick a winner"
	ErrNoJudging        GameError = "no judging is in progress"
	ErrGameNotFound     GameError = "game not found"
	ErrUnknownMode      GameError = "unknown game mode"
	ErrCardNotInHand    GameError = "card is not in the player's hand"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilDecks         GameError = "deck store cannot be nil"
	ErrNilNotifier      GameError = "notifier cannot be nil"
	ErrNilMessages      GameError = "messaging service cannot be nil"
	ErrNilRecordRepo    GameError = "record repository cannot be nil"
	ErrNilAutoPlayer    GameError = "auto player cannot be nil"
	ErrNilClock         GameError = "clock cannot be nil"
	ErrNilUUIDGenerator GameError = "UUID generator cannot be nil"
)
