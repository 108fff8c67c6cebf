package model

// DefaultTabName is created on first run when no tabs exist.
const DefaultTabName = "Default"
