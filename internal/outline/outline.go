// Copyright (c) 2026 Darasa Academy. All rights reserved.
// Author: platform@darasa.app

/*
Package outline generates draft course outlines with a generative AI model.

Instructors provide a topic; the service returns a structured outline (title,
description, modules with lesson titles) they can refine into a real course.
The model is forced onto a fixed JSON schema so responses parse directly into
the domain types without prompt-format guesswork.
*/
package outline

import "context"

// CourseOutline is a generated draft of a course structure.
type CourseOutline struct {
	CourseTitle       string          `json:"courseTitle"`
	CourseDescription string          `json:"courseDescription"`
	SuggestedSlug     string          `json:"suggested_slug,omitempty"`
	Modules           []OutlineModule `json:"modules"`
}

// OutlineModule is one generated section with its lesson titles.
type OutlineModule struct {
	ModuleTitle string   `json:"moduleTitle"`
	Lessons     []string `json:"lessons"`
}

// Generator produces course outlines for a topic.
type Generator interface {
	// Generate returns a structured outline for the topic.
	// Implementations must honour ctx cancellation.
	Generate(context context.Context, topic string) (*CourseOutline, error)
}

// FieldTopic is the validated input field identifier.
const FieldTopic = "topic"
