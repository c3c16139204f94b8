package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blockpress/headline/block"
	"github.com/blockpress/headline/editor"
)

type model struct {
	editor editor.Model
	saved  block.Data
}

func newModel() model {
	cfg := editor.Config{
		RawData: []byte(`{"text":"Hello from headline","level":2}`),
		Tool: block.Config{
			Placeholder:  "Enter a heading",
			DefaultLevel: 2,
		},
		ShowToolbar: true,
		Style:       editor.DefaultStyle(),
		OnChange: func(ev editor.ChangeEvent) {
			log.Printf("change v%d: %+v", ev.Version, ev.Data)
		},
	}
	return model{editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "ctrl+q" {
		m.saved = m.editor.Save()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() +
		"\n\ntype to edit · paste <h1>..<h6> markup to convert · alt+1..6 level\nctrl+l levels panel · ctrl+q save and quit\n"
}

func main() {
	if os.Getenv("HEADLINE_DEBUG") != "" {
		f, err := tea.LogToFile("headline-debug.log", "headline")
		if err != nil {
			_, _ = os.Stderr.WriteString(err.Error() + "\n")
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	m := final.(model)
	if !m.editor.Header().Validate(m.saved) {
		fmt.Println("empty heading, block discarded")
		return
	}
	out, _ := json.Marshal(m.saved)
	fmt.Println(string(out))
}
