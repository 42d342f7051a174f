// Package services contains the application services behind the HTTP
// handlers: summarization over stored datasets and health reporting.
package services
