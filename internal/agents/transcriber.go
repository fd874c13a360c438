package agents

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Transcriber turns an audio/video file into text
type Transcriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

const transcribeScriptName = "transcribe.py"

const transcribePy = `import sys
import whisper

if len(sys.argv) != 4:
    print("Usage: python3 transcribe.py <model> <input_video> <output_txt>")
    sys.exit(1)

model = whisper.load_model(sys.argv[1])
result = model.transcribe(sys.argv[2])
with open(sys.argv[3], "w") as f:
    f.write(result["text"].strip())
`

// WhisperTranscriber runs openai-whisper through a local Python interpreter
type WhisperTranscriber struct {
	pythonBin  string
	scriptsDir string
	model      string
}

func NewWhisperTranscriber(pythonBin, scriptsDir, model string) *WhisperTranscriber {
	return &WhisperTranscriber{
		pythonBin:  pythonBin,
		scriptsDir: scriptsDir,
		model:      model,
	}
}

// Transcribe blocks until whisper finishes. Errors are returned as-is; there is no retry.
func (t *WhisperTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	script, err := t.ensureScript()
	if err != nil {
		return "", err
	}

	out, err := os.CreateTemp("", "transcript-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create transcript file: %w", err)
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	log.Printf("🎙️ Running whisper (%s) on %s", t.model, filepath.Base(path))

	cmd := exec.CommandContext(ctx, t.pythonBin, script, t.model, path, outPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("whisper transcription failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to read transcript: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (t *WhisperTranscriber) ensureScript() (string, error) {
	if err := os.MkdirAll(t.scriptsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create scripts dir: %w", err)
	}

	path := filepath.Join(t.scriptsDir, transcribeScriptName)
	if err := writeFileIfNotExists(path, transcribePy); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", transcribeScriptName, err)
	}
	return path, nil
}

func writeFileIfNotExists(path, content string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.WriteFile(path, []byte(content), 0644)
	}
	return nil
}
