// Package cert renders the completion certificate as a self-contained HTML
// document and writes it to disk.
package cert

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Adinayykka/Space-Weather/internal/engine"
)

var certTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>Space Weather Certificate</title>
    <style>
        body {
            font-family: 'Orbitron', monospace;
            background: linear-gradient(45deg, #0a0a2e, #16213e);
            color: #00bfff;
            text-align: center;
            padding: 50px;
        }
        .certificate {
            background: rgba(0, 0, 0, 0.8);
            border: 3px solid #00bfff;
            border-radius: 20px;
            padding: 50px;
            max-width: 800px;
            margin: 0 auto;
            box-shadow: 0 0 50px #00bfff;
        }
        h1 { font-size: 3rem; margin-bottom: 30px; }
        h2 { font-size: 2rem; margin-bottom: 20px; }
        p { font-size: 1.2rem; margin: 20px 0; }
        .score { color: #00ff00; font-size: 1.5rem; }
    </style>
</head>
<body>
    <div class="certificate">
        <h1>SPACE WEATHER MISSION</h1>
        <h2>CERTIFICATE OF COMPLETION</h2>
        <p>This certifies that</p>
        <h2>{{.Name}} {{.Surname}}</h2>
        <p>has successfully completed the Space Weather Educational Mission</p>
        <p>Final Score: <span class="score">{{.Score}}/{{.Total}}</span></p>
        <p>Date: {{.Date}}</p>
        <p>Developed by SAGA</p>
    </div>
</body>
</html>
`))

type data struct {
	Name    string
	Surname string
	Score   int
	Total   int
	Date    string
}

// Render is a pure function of player, score and date; it touches no game
// state.
func Render(player engine.PlayerInfo, score int, date time.Time) (string, error) {
	var b strings.Builder
	err := certTemplate.Execute(&b, data{
		Name:    player.Name,
		Surname: player.Surname,
		Score:   score,
		Total:   engine.QuizLength,
		Date:    date.Format("1/2/2006"),
	})
	if err != nil {
		return "", fmt.Errorf("render certificate: %w", err)
	}
	return b.String(), nil
}

// Filename names the download after the player's first name.
func Filename(player engine.PlayerInfo) string {
	return fmt.Sprintf("Space_Weather_Certificate_%s.html", player.Name)
}

// DefaultDir is where exported certificates land when no directory is
// configured.
func DefaultDir() string {
	return filepath.Join(os.Getenv("HOME"), ".stormwatch", "certificates")
}

// Export renders and writes the certificate, returning the written path.
func Export(dir string, player engine.PlayerInfo, score int, date time.Time) (string, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	doc, err := Render(player, score, date)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create certificate dir: %w", err)
	}
	path := filepath.Join(dir, Filename(player))
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		return "", fmt.Errorf("write certificate: %w", err)
	}
	return path, nil
}
