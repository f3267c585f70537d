// Package pipeline describes a delivery pipeline as a diagram.
//
// A [Definition] is an ordered list of [Stage] values. Each stage becomes one
// node and consecutive stages are joined by a "flows into" edge, so a
// definition with n stages always draws as a simple path with n-1 edges.
//
// # The Static Website Pipeline
//
// [StaticWebsite] returns the built-in definition: a GitHub repository feeding
// CodePipeline, which runs CodeBuild and then CodeDeploy to publish into an S3
// bucket serving a static website.
//
//	Repository -> CodePipeline -> CodeBuild -> CodeDeploy -> Static Website
//
// It has an empty title, is laid out left to right, and has a transparent
// background.
//
// # Drawing
//
// [Definition.Draw] opens a [diagram.Scope], adds the nodes and edges, renders
// once, and closes the scope on every path:
//
//	path, err := pipeline.StaticWebsite().Draw(ctx, diagram.Output{})
//
// [Runner] wraps Draw with logging and timing for command-line use.
package pipeline
