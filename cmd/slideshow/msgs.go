package slideshow

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootUse   = "slideshow [options] name..."
	MsgRootShort = "Slide Show (S9) is a free web alternative to PowerPoint or KeyNote"

	// Flag descriptions
	MsgFlagOutput   = "Output Path (default is %s)"
	MsgFlagTemplate = "Template Manifest (default is %s)"
	MsgFlagH1       = "Set Header Level to 1 (default)"
	MsgFlagH2       = "Set Header Level to 2"
	MsgFlagFetch    = "Fetch Templates"
	MsgFlagList     = "List Installed Templates"
	MsgFlagConfig   = "Configuration Path (default is %s)"
	MsgFlagGenerate = "Generate Slide Show Templates (using built-in S6 Pack)"
	MsgFlagQuick    = "Generate Quickstart Slide Show Sample"
	MsgFlagVerbose  = "Show debug trace"

	// Error messages
	MsgErrInvalidArgs = "invalid arguments"
	MsgErrPaths       = "failed to resolve slideshow directories"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/examples.txt
	msgExamplesRaw string
	MsgExamples    = strings.TrimSpace(msgExamplesRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
