package services

import (
	"path/filepath"
	"testing"

	"gdsync/internal/config"
	"gdsync/internal/models"
	"gdsync/internal/paths"
	"gdsync/internal/transfer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linuxHost(existing ...string) paths.Platform {
	set := make(map[string]bool)
	for _, e := range existing {
		set[e] = true
	}
	return paths.Platform{
		OS:   "linux",
		Home: "/home/alice",
		User: "alice",
		Exists: func(path string) bool {
			return set[path]
		},
	}
}

func TestBuildRequest(t *testing.T) {
	wine := filepath.Join("/home/alice", ".wine", "drive_c", "users", "alice", "AppData", "Local", "GeometryDash")
	proton := filepath.Join("/home/alice", ".local", "share", "Steam", "steamapps", "compatdata", "322170",
		"pfx", "drive_c", "users", "steamuser", "AppData", "Local", "GeometryDash")
	yes, no := true, false

	tests := []struct {
		name     string
		platform paths.Platform
		setup    func(*config.Config)
		opts     models.RequestOptions
		want     models.TransferRequest
	}{
		{
			name:     "configured defaults",
			platform: linuxHost(),
			want: models.TransferRequest{
				Direction:  models.DirectionPCToPhone,
				Scope:      models.ScopeUserData,
				LocalRoot:  wine,
				RemoteRoot: config.DefaultRemoteRoot,
			},
		},
		{
			name:     "detected proton prefix",
			platform: linuxHost(proton),
			opts:     models.RequestOptions{Direction: "phone-to-pc", Scope: "all"},
			want: models.TransferRequest{
				Direction:  models.DirectionPhoneToPC,
				Scope:      models.ScopeAll,
				LocalRoot:  proton,
				RemoteRoot: config.DefaultRemoteRoot,
			},
		},
		{
			name:     "explicit local root wins",
			platform: linuxHost(proton),
			opts:     models.RequestOptions{LocalRoot: "/saves/gd", SmartSync: &yes, Backup: &yes},
			want: models.TransferRequest{
				Direction:  models.DirectionPCToPhone,
				Scope:      models.ScopeUserData,
				LocalRoot:  filepath.Clean("/saves/gd"),
				RemoteRoot: config.DefaultRemoteRoot,
				SmartSync:  true,
				Backup:     true,
			},
		},
		{
			name:     "configured profile and remote root",
			platform: linuxHost(wine),
			setup: func(c *config.Config) {
				c.Paths.Profile = "proton"
				c.Paths.RemoteRoot = "/sdcard/gd"
				c.Transfer.SmartSync = true
			},
			want: models.TransferRequest{
				Direction:  models.DirectionPCToPhone,
				Scope:      models.ScopeUserData,
				LocalRoot:  proton,
				RemoteRoot: "/sdcard/gd",
				SmartSync:  true,
			},
		},
		{
			name:     "configured extras with override",
			platform: linuxHost(),
			setup: func(c *config.Config) {
				c.Transfer.GeodeMods = true
				c.Transfer.GDHReplays = true
			},
			opts: models.RequestOptions{GDHReplays: &no},
			want: models.TransferRequest{
				Direction:  models.DirectionPCToPhone,
				Scope:      models.ScopeUserData,
				LocalRoot:  wine,
				RemoteRoot: config.DefaultRemoteRoot,
				GeodeMods:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.setup != nil {
				tt.setup(cfg)
			}

			req, err := BuildRequest(cfg, tt.platform, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req)
		})
	}
}

func TestBuildRequest_Errors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*config.Config)
		opts  models.RequestOptions
	}{
		{name: "bad direction", opts: models.RequestOptions{Direction: "sideways"}},
		{name: "bad scope", opts: models.RequestOptions{Scope: "some"}},
		{name: "bad profile", opts: models.RequestOptions{Profile: "crossover"}},
		{name: "custom without path", setup: func(c *config.Config) { c.Paths.Profile = "custom" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			if tt.setup != nil {
				tt.setup(cfg)
			}

			_, err := BuildRequest(cfg, linuxHost(), tt.opts)

			var cfgErr *transfer.ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}
