package domain

import "reflect"

// ClassQuery selects named types. Empty fields match anything.
type ClassQuery struct {
	// Package is the exact package path of the type.
	Package string
	// Name is the exact unqualified type name.
	Name string
	// NamePattern is a regular expression matched against the unqualified name.
	NamePattern string
	// Implements lists interface types that the type or its pointer must implement.
	Implements []reflect.Type
	// HasMethods lists method names the type must expose.
	HasMethods []string
	// HasFields lists field names the type must declare.
	HasFields []string
}

// MethodQuery selects methods of types matched by Declaring.
type MethodQuery struct {
	Declaring   ClassQuery
	Name        string
	NamePattern string
	// Params is compared exactly when non-nil. Use an empty slice to match no parameters.
	Params []reflect.Type
	// Results is compared exactly when non-nil.
	Results []reflect.Type
}

// FieldQuery selects struct fields of types matched by Declaring.
type FieldQuery struct {
	Declaring   ClassQuery
	Name        string
	NamePattern string
	// Type is compared exactly when non-nil.
	Type reflect.Type
}
