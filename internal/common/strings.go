package common

// UnknownStr is printed for enum values with no known name.
const UnknownStr = "unknown"
