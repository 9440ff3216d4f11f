// Package view renders human readable summaries for the command line tool.
package view
