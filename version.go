package arkhe

// Version is the current release of the module.
const Version = "0.1.0"
