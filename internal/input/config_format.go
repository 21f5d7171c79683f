package input

// Keyspec is a key as written in a configuration, e.g. "<tab>" or "x".
type Keyspec string

// Actionspec names an action a key can be bound to, e.g. "next-field".
type Actionspec string

// Bindings maps keys to the actions they trigger.
type Bindings map[Keyspec]Actionspec
