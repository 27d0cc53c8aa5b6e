package model

// Package model defines the countdown widget's domain data: the persisted timer
// record, the closed set of duration labels, the dial arc geometry and the
// derived status enum. Values are plain structs so hosts can bind them directly
// and every transition stays explicit.
