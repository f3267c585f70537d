package pipeline

import "github.com/matzehuels/pipeviz/pkg/render/diagram"

// Region is the AWS region the static website pipeline is provisioned in.
const Region = "us-east-1"

// StaticWebsite returns the built-in pipeline: source on GitHub, orchestrated
// by CodePipeline, built by CodeBuild, deployed by CodeDeploy into an S3
// bucket that serves the site. Each call returns a fresh copy.
func StaticWebsite() *Definition {
	return &Definition{
		Title:     "",
		Direction: diagram.DirectionLR,
		GraphAttr: map[string]string{"bgcolor": "transparent"},
		Stages: []Stage{
			{
				Label:    "Repository",
				Category: CategoryVCS,
				Meta: map[string]string{
					"provider": "GitHub",
					"output":   "source_output",
				},
			},
			{
				Label:    "CodePipeline",
				Category: CategoryOrchestrator,
				Meta: map[string]string{
					"name":           "codepipeline_staticwebsite_jd",
					"artifact_store": "s3-staticwebsite-artifcats-store",
					"role":           "iam_role_codepipeline_jd",
					"region":         Region,
				},
			},
			{
				Label:    "CodeBuild",
				Category: CategoryBuild,
				Meta: map[string]string{
					"project": "codebuild_staticwebsite_jd",
					"image":   "aws/codebuild/standard:6.0",
					"compute": "BUILD_GENERAL1_SMALL",
					"role":    "iam_role_codebuild_jd",
				},
			},
			{
				Label:    "CodeDeploy",
				Category: CategoryDeploy,
				Meta: map[string]string{
					"provider": "S3",
					"extract":  "true",
				},
			},
			{
				Label:    "Static Website",
				Category: CategoryStorage,
				Meta: map[string]string{
					"bucket": "staticwebsite-todolist-poc-100021",
					"region": Region,
				},
			},
		},
	}
}
