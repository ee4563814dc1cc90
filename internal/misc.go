package internal

// Panic message for internal states that should be unreachable.
const BrokenCode = "broken code"
