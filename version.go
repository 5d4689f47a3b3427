package powerevent

// Version is set at build time with
// -ldflags "-X github.com/sagernet/sing-powerevent.Version=<version>".
var Version = "unknown"
