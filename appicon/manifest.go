package appicon

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Manifest is the Contents.json document of an AppIcon.appiconset,
// shaped the way Xcode writes it.
type Manifest struct {
	Images []ManifestImage `json:"images"`
	Info   ManifestInfo    `json:"info"`
}

// ManifestImage describes one icon file of the set.
type ManifestImage struct {
	Appearances []Appearance `json:"appearances,omitempty"`
	FileName    string       `json:"filename"`
	Idiom       string       `json:"idiom"`
	Platform    string       `json:"platform,omitempty"`
	Scale       string       `json:"scale,omitempty"`
	Size        string       `json:"size"`
}

// Appearance selects a system appearance, such as dark luminosity.
type Appearance struct {
	Appearance string `json:"appearance"`
	Value      string `json:"value"`
}

type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// DefaultManifest describes the three universal 1024 point icons.
// Dark and tinted carry their luminosity appearance; the content does
// not depend on the rendered input.
func DefaultManifest() Manifest {
	return Manifest{
		Images: []ManifestImage{
			{
				FileName: fileLight,
				Idiom:    "universal",
				Platform: "ios",
				Size:     "1024x1024",
			},
			{
				Appearances: []Appearance{{Appearance: "luminosity", Value: "dark"}},
				FileName:    fileDark,
				Idiom:       "universal",
				Platform:    "ios",
				Size:        "1024x1024",
			},
			{
				Appearances: []Appearance{{Appearance: "luminosity", Value: "tinted"}},
				FileName:    fileTinted,
				Idiom:       "universal",
				Platform:    "ios",
				Size:        "1024x1024",
			},
		},
		Info: ManifestInfo{Author: "xcode", Version: 1},
	}
}

// Write saves the manifest as Contents.json under dir.
func (m Manifest) Write(dir string) error {
	buf, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, manifestName), buf, 0644)
}
