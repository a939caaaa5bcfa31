package ringctl

// Version is the ringctl release.
const Version = "0.3.0"
