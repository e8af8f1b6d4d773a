// Package events defines the topics and payloads published by the playground.
package events
