package handlers

// User-facing messages
const (
	MsgUnknownManifest   = "unknown template manifest '%s'"
	MsgInstalledIn       = "Installed templates in '%s':"
	MsgNoneInstalled     = "(none)"
	MsgCopyingTemplates  = "Copying templates for '%s' to '%s'...\n"
	MsgFetching          = "Fetching templates from '%s' into '%s'...\n"
	MsgUnsupportedScheme = "cannot fetch '%s': only local paths and file:// URIs are supported"
	MsgPreparing         = "Preparing slideshow '%s'...\n"
	MsgDone              = "Done! Slideshow written to '%s'.\n"
	MsgNoRenderer        = "no renderer for %s markup in '%s'"
)
