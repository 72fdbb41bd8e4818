// Package config loads slideshow settings once per run.
//
// Sources are layered with koanf, later ones winning: the embedded
// defaults, the user's slideshow.toml in the config directory, then
// SLIDESHOW_* environment variables. The resulting Config is never
// modified after Load returns and is shared by pointer with every handler.
package config
