package audio

import "fmt"

// Sound identifies a logical sound
type Sound int

const (
	CardMove Sound = iota
	Incorrect
	Correct
	ModalOpen
	NextLevel
	FinishGame
	GameStart
	Music

	soundCount
)

var soundNames = [soundCount]string{
	CardMove:   "card_move",
	Incorrect:  "incorrect",
	Correct:    "correct",
	ModalOpen:  "modal_open",
	NextLevel:  "next_level",
	FinishGame: "finish_game",
	GameStart:  "game_start",
	Music:      "music",
}

// soundFiles maps each sound to its asset file name
var soundFiles = [soundCount]string{
	CardMove:   "Card movement - Epidemic Sound.wav",
	Incorrect:  "Incorrect_Wood Impact.mp3",
	Correct:    "All 5 Correct_Japanese Instrument.wav",
	ModalOpen:  "Modal Open - Epidemic Sound.wav",
	NextLevel:  "Next Level_Bamboo Chimes.wav",
	FinishGame: "Finish Game_Temple Bowl.wav",
	GameStart:  "Game start_crystal bowl.wav",
	Music:      "music.mp3",
}

// Sounds lists every logical sound
func Sounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

func (s Sound) String() string {
	if s < 0 || s >= soundCount {
		return fmt.Sprintf("Sound(%d)", int(s))
	}
	return soundNames[s]
}

// FileName returns the asset file name, empty for unknown sounds
func (s Sound) FileName() string {
	if s < 0 || s >= soundCount {
		return ""
	}
	return soundFiles[s]
}
