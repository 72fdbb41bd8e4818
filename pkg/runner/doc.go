// Package runner dispatches one parsed command line to exactly one mode.
//
// The mode comes from options.Options.Mode. List, generate, quick and
// fetch each construct a single handler and return whatever it returns.
// Build loads plugins once, resolves the arguments to files and builds each
// file in argument order; a file that fails is reported and the rest are
// still built.
package runner
