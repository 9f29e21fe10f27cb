package services

import (
	"errors"
	"log/slog"

	"gdsync/internal/config"
	"gdsync/internal/models"
	"gdsync/internal/paths"
	"gdsync/internal/transfer"
)

// BuildRequest resolves opts against cfg and the host into a complete
// request. Problems are reported as *transfer.ConfigurationError.
func BuildRequest(cfg *config.Config, platform paths.Platform, opts models.RequestOptions) (models.TransferRequest, error) {
	tc := cfg.GetTransfer()
	pc := cfg.GetPaths()

	direction, err := models.ParseDirection(firstNonEmpty(opts.Direction, tc.Direction))
	if err != nil {
		return models.TransferRequest{}, &transfer.ConfigurationError{Reason: err.Error()}
	}
	scope, err := models.ParseScope(firstNonEmpty(opts.Scope, tc.Scope))
	if err != nil {
		return models.TransferRequest{}, &transfer.ConfigurationError{Reason: err.Error()}
	}

	local, remote, err := resolveRoots(platform, pc, opts)
	if err != nil {
		return models.TransferRequest{}, &transfer.ConfigurationError{Reason: err.Error()}
	}

	req := models.TransferRequest{
		Direction:  direction,
		Scope:      scope,
		LocalRoot:  local,
		RemoteRoot: remote,
		SmartSync:  tc.SmartSync,
		Backup:     tc.Backup,
		GeodeMods:  tc.GeodeMods,
		GDHReplays: tc.GDHReplays,
	}
	for _, o := range []struct {
		set *bool
		dst *bool
	}{
		{opts.SmartSync, &req.SmartSync},
		{opts.Backup, &req.Backup},
		{opts.GeodeMods, &req.GeodeMods},
		{opts.GDHReplays, &req.GDHReplays},
	} {
		if o.set != nil {
			*o.dst = *o.set
		}
	}
	return req, nil
}

func resolveRoots(platform paths.Platform, pc config.PathsConfig, opts models.RequestOptions) (string, string, error) {
	if opts.LocalRoot != "" {
		return paths.Resolve(platform, paths.ProfileCustom, opts.LocalRoot, pc.RemoteRoot)
	}

	name := firstNonEmpty(opts.Profile, pc.Profile)
	if name != "" {
		profile, err := paths.ParseProfile(name)
		if err != nil {
			return "", "", err
		}
		return paths.Resolve(platform, profile, pc.CustomPath, pc.RemoteRoot)
	}

	profile, _, err := paths.Detect(platform)
	if errors.Is(err, paths.ErrNoProfileDetected) {
		profile = platform.DefaultProfile()
		slog.Debug("no save directory detected, using default profile", "profile", profile)
	} else if err != nil {
		return "", "", err
	}
	return paths.Resolve(platform, profile, pc.CustomPath, pc.RemoteRoot)
}

// NewRequest is BuildRequest against the service's configuration and the
// current host.
func (s *TransferService) NewRequest(opts models.RequestOptions) (models.TransferRequest, error) {
	platform, err := paths.CurrentPlatform()
	if err != nil {
		return models.TransferRequest{}, &transfer.ConfigurationError{Reason: err.Error()}
	}
	return BuildRequest(s.config, platform, opts)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
