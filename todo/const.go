package todo

// DefaultMarker is the substring that classifies a todo item as related
// when no custom predicate is configured.
const DefaultMarker = "Spring"
