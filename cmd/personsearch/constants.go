package main

// Valid export formats.
var validFormats = []string{"json", "csv"}

// Valid import formats.
var validImportFormats = []string{"auto", "json", "csv"}
