package config

import (
	"context"
	"fmt"

	"gopkg.in/ini.v1"
)

// Keys recognised in a profile section of the .tableaucfg file.
const (
	keyServer      = "server"
	keySite        = "site"
	keyTokenName   = "token_name"
	keyTokenSecret = "token_secret"
	keyAPIVersion  = "api_version"
)

var profileKeys = []string{keyServer, keySite, keyTokenName, keyTokenSecret, keyAPIVersion}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, profile string) (map[string]string, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

// GetProfile returns the recognised keys set in the profile section.
func (cr *cfgRegistry) GetProfile(_ context.Context, profile string) (map[string]string, error) {
	section, err := cr.cfg.GetSection(profile)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", profile)
	}

	values := make(map[string]string)
	for _, key := range profileKeys {
		if section.HasKey(key) {
			values[key] = section.Key(key).String()
		}
	}
	return values, nil
}
