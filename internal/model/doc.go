package model

// Package model defines the product record shared across the app: JSON decoding
// of loosely-typed catalog files, derived availability, and display formatting.
// Values are plain structs meant to be passed by value between layers.
