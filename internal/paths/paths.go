package paths

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strings"
)

// Profile names a directory convention for the game's local save folder.
type Profile string

const (
	ProfileNative Profile = "native"
	ProfileWine   Profile = "wine"
	ProfileProton Profile = "proton"
	ProfileCustom Profile = "custom"
)

// SteamAppID is the game's Steam application id, used by the Proton prefix.
const SteamAppID = "322170"

var ErrNoProfileDetected = errors.New("no save directory found for any known profile")

func ParseProfile(s string) (Profile, error) {
	switch p := Profile(strings.ToLower(strings.TrimSpace(s))); p {
	case ProfileNative, ProfileWine, ProfileProton, ProfileCustom:
		return p, nil
	}
	return "", fmt.Errorf("invalid profile %q (want native, wine, proton or custom)", s)
}

// Platform is the host information path resolution depends on.
type Platform struct {
	OS           string
	Home         string
	User         string
	LocalAppData string

	// Exists reports whether a directory is present. Defaults to a stat.
	Exists func(path string) bool
}

// CurrentPlatform describes the running host.
func CurrentPlatform() (Platform, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Platform{}, fmt.Errorf("failed to determine home directory: %w", err)
	}

	name := os.Getenv("USER")
	if name == "" {
		name = os.Getenv("USERNAME")
	}
	if name == "" {
		if u, err := user.Current(); err == nil {
			name = u.Username
		}
	}

	return Platform{
		OS:           runtime.GOOS,
		Home:         home,
		User:         name,
		LocalAppData: os.Getenv("LOCALAPPDATA"),
	}, nil
}

func (p Platform) exists(path string) bool {
	if p.Exists != nil {
		return p.Exists(path)
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// DefaultProfile is used when neither configuration nor detection picks one.
func (p Platform) DefaultProfile() Profile {
	if p.OS == "linux" {
		return ProfileWine
	}
	return ProfileNative
}

// LocalRoot returns the local save directory for profile. It does not check
// that the directory exists.
func LocalRoot(p Platform, profile Profile, custom string) (string, error) {
	switch profile {
	case ProfileNative:
		switch p.OS {
		case "windows":
			base := p.LocalAppData
			if base == "" {
				base = filepath.Join(p.Home, "AppData", "Local")
			}
			return filepath.Join(base, "GeometryDash"), nil
		case "darwin":
			return filepath.Join(p.Home, "Library", "Application Support", "GeometryDash"), nil
		}
		return "", fmt.Errorf("no native save directory on %s, use the wine or proton profile", p.OS)

	case ProfileWine:
		if p.User == "" {
			return "", fmt.Errorf("cannot resolve wine prefix without a user name")
		}
		return filepath.Join(p.Home, ".wine", "drive_c", "users", p.User, "AppData", "Local", "GeometryDash"), nil

	case ProfileProton:
		return filepath.Join(p.Home, ".local", "share", "Steam", "steamapps", "compatdata", SteamAppID,
			"pfx", "drive_c", "users", "steamuser", "AppData", "Local", "GeometryDash"), nil

	case ProfileCustom:
		if strings.TrimSpace(custom) == "" {
			return "", fmt.Errorf("custom profile requires a path")
		}
		return filepath.Clean(custom), nil
	}

	return "", fmt.Errorf("unknown profile %q", profile)
}

// Resolve returns the local and remote roots of a transfer.
func Resolve(p Platform, profile Profile, custom, remoteRoot string) (string, string, error) {
	if remoteRoot == "" {
		return "", "", fmt.Errorf("remote root is required")
	}
	local, err := LocalRoot(p, profile, custom)
	if err != nil {
		return "", "", err
	}
	return local, remoteRoot, nil
}

// Detect probes the wine prefix and then the Proton prefix, returning the
// first that exists. Native hosts always use the native profile.
func Detect(p Platform) (Profile, string, error) {
	if p.OS == "windows" || p.OS == "darwin" {
		root, err := LocalRoot(p, ProfileNative, "")
		return ProfileNative, root, err
	}

	for _, profile := range []Profile{ProfileWine, ProfileProton} {
		root, err := LocalRoot(p, profile, "")
		if err != nil {
			continue
		}
		if p.exists(root) {
			return profile, root, nil
		}
	}
	return "", "", ErrNoProfileDetected
}

// Candidates lists every fixed profile that applies to the host with its
// directory and whether that directory exists.
func Candidates(p Platform) []Candidate {
	profiles := []Profile{ProfileWine, ProfileProton}
	if p.OS == "windows" || p.OS == "darwin" {
		profiles = []Profile{ProfileNative}
	}

	var out []Candidate
	for _, profile := range profiles {
		root, err := LocalRoot(p, profile, "")
		if err != nil {
			continue
		}
		out = append(out, Candidate{Profile: profile, Path: root, Exists: p.exists(root)})
	}
	return out
}

type Candidate struct {
	Profile Profile `json:"profile"`
	Path    string  `json:"path"`
	Exists  bool    `json:"exists"`
}
