package pipeline

import (
	"slices"
	"strings"

	perrors "github.com/matzehuels/pipeviz/pkg/errors"
)

// Category is the kind of service a stage represents. It selects the node
// icon and style.
type Category string

const (
	CategoryVCS          Category = "vcs"          // source repository
	CategoryOrchestrator Category = "orchestrator" // pipeline service
	CategoryBuild        Category = "build"        // build service
	CategoryDeploy       Category = "deploy"       // deployment service
	CategoryStorage      Category = "storage"      // object storage
)

// Categories lists the known categories in pipeline order.
var Categories = []Category{
	CategoryVCS,
	CategoryOrchestrator,
	CategoryBuild,
	CategoryDeploy,
	CategoryStorage,
}

var icons = map[Category]string{
	CategoryVCS:          "onprem/vcs/github",
	CategoryOrchestrator: "aws/devtools/codepipeline",
	CategoryBuild:        "aws/devtools/codebuild",
	CategoryDeploy:       "aws/devtools/codedeploy",
	CategoryStorage:      "aws/storage/s3",
}

// ParseCategory converts a category name (case-insensitive) to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", perrors.New(perrors.ErrCodeInvalidCategory, "invalid category: %q (must be one of: %s)", s, categoryList())
	}
	return c, nil
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return slices.Contains(Categories, c) }

// Icon returns the icon identifier of c, or "" for an unknown category.
func (c Category) Icon() string { return icons[c] }

func (c Category) String() string { return string(c) }

func categoryList() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
