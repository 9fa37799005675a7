package core

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/julien-sobczak/the-slidewriter/internal/slides"
	"github.com/julien-sobczak/the-slidewriter/pkg/oid"
)

// DeckDocuments stores the content of slide decks edited by block sessions.
// Sessions are keyed by deck OID.
type DeckDocuments struct {
	repository *Repository
}

func NewDeckDocuments(r *Repository) *DeckDocuments {
	return &DeckDocuments{
		repository: r,
	}
}

func (d *DeckDocuments) Load(key string) (string, error) {
	deck, err := d.repository.mustLoadSlideDeck(oid.OID(key))
	if err != nil {
		return "", err
	}
	return deck.Content, nil
}

func (d *DeckDocuments) Save(key string, markdown string) error {
	deck, err := d.repository.mustLoadSlideDeck(oid.OID(key))
	if err != nil {
		return err
	}
	deck.SetContent(markdown)
	return d.repository.UpdateSlideDeck(deck)
}

// NewDeckSession starts a block editing session on a slide deck.
// Every emitted document is persisted in the database.
func (r *Repository) NewDeckSession(deck *SlideDeck, options ...slides.SessionOption) (*slides.Session, error) {
	defaults := []slides.SessionOption{
		slides.UseLogger(CurrentLogger()),
		slides.UseStoreOptions(slides.WithDefaultContent(CurrentConfig().ConfigFile.Editor.DefaultSlide)),
	}
	return slides.NewSession(NewDeckDocuments(r), string(deck.OID), append(defaults, options...)...)
}

// DumpSession prints the blocks of a session at trace level.
func DumpSession(session *slides.Session) {
	CurrentLogger().Dump(fmt.Sprintf("Session %s (%s)", session.Key(), session.State()), session.Blocks())
}

// EditInExternalEditor opens the content in the configured editor and returns the edited content.
func EditInExternalEditor(filename, content string) (string, error) {
	f, err := os.CreateTemp("", "*-"+filename)
	if err != nil {
		return "", err
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	command := strings.Fields(CurrentConfig().EditorCommand())
	if len(command) == 0 {
		return "", fmt.Errorf("no editor configured")
	}
	args := append(command[1:], f.Name())
	CurrentLogger().Debugf("Running %s %s", command[0], strings.Join(args, " "))
	cmd := exec.Command(command[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor %q failed: %w", command[0], err)
	}

	edited, err := os.ReadFile(f.Name())
	if err != nil {
		return "", err
	}
	return string(edited), nil
}
