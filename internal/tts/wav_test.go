package tts

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}
	path := filepath.Join(t.TempDir(), "out.wav")

	if err := writeWAV(path, pcm); err != nil {
		t.Fatalf("writeWAV() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(data) != 44+len(pcm) {
		t.Fatalf("file size = %d, want %d", len(data), 44+len(pcm))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Errorf("missing RIFF/WAVE tags: %q %q", data[0:4], data[8:12])
	}
	if got := binary.LittleEndian.Uint16(data[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(data[24:28]); got != 24000 {
		t.Errorf("sample rate = %d, want 24000", got)
	}
	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := binary.LittleEndian.Uint32(data[40:44]); got != uint32(len(pcm)) {
		t.Errorf("data chunk length = %d, want %d", got, len(pcm))
	}
	if string(data[44:]) != string(pcm) {
		t.Error("PCM payload not written verbatim")
	}
}
