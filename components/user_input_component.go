package components

import (
	"bytes"
	"unicode/utf8"

	"github.com/amirrezaask/stenografi/byteutils"
	"golang.design/x/clipboard"
)

// UserInputComponent holds the line the user is typing. The cursor is always
// at the end: characters are appended and deletes work backwards from it.
type UserInputComponent struct {
	UserInput []byte
	LastInput string
	MaxLength int
}

func NewUserInputComponent(maxLength int) *UserInputComponent {
	return &UserInputComponent{MaxLength: maxLength}
}

func (f *UserInputComponent) SetNewUserInput(bs []byte) {
	f.LastInput = string(f.UserInput)
	if f.MaxLength > 0 && len(bs) > f.MaxLength {
		bs = bs[:f.MaxLength]
		for len(bs) > 0 && !utf8.Valid(bs) {
			bs = bs[:len(bs)-1]
		}
	}
	f.UserInput = bs
}

func (f *UserInputComponent) InsertChar(char rune) error {
	f.SetNewUserInput(utf8.AppendRune(bytes.Clone(f.UserInput), char))
	return nil
}

func (f *UserInputComponent) DeleteCharBackward() error {
	f.SetNewUserInput(f.UserInput[:byteutils.LastCharStart(f.UserInput)])
	return nil
}

func (f *UserInputComponent) DeleteWordBackward() error {
	f.SetNewUserInput(f.UserInput[:byteutils.PreviousWordStart(f.UserInput, len(f.UserInput))])
	return nil
}

func (f *UserInputComponent) Clear() error {
	f.SetNewUserInput(nil)
	return nil
}

// Changed reports whether the last edit changed the input.
func (f *UserInputComponent) Changed() bool {
	return f.LastInput != string(f.UserInput)
}

func (f *UserInputComponent) Paste() error {
	content := bytes.ReplaceAll(getClipboardContent(), []byte("\n"), []byte(" "))
	f.SetNewUserInput(append(bytes.Clone(f.UserInput), content...))
	return nil
}

func (f *UserInputComponent) Copy() error {
	writeToClipboard(f.UserInput)
	return nil
}

func (f *UserInputComponent) String() string {
	return string(f.UserInput)
}

var (
	getClipboardContent = func() []byte {
		return clipboard.Read(clipboard.FmtText)
	}
	writeToClipboard = func(bs []byte) {
		clipboard.Write(clipboard.FmtText, bytes.Clone(bs))
	}
)
