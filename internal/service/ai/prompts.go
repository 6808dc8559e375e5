package ai

import (
	"fmt"
	"strings"

	"github-rebac/internal/models"
)

const sampleDiff = `
diff --git a/src/api/users.js b/src/api/users.js
@@ -10,6 +10,12 @@ async function getUser(id) {
+
+  // New search functionality
+  async function searchUsers(query) {
+    const users = await db.query('SELECT * FROM users WHERE name LIKE $1', ['%' + query + '%']);
+    return users;
+  }
`

// DefaultCommits stand in for a branch history when the caller sends none.
var DefaultCommits = []string{
	"Add user search endpoint",
	"Implement query validation",
	"Add tests for search",
}

func reviewPrompt(pr *models.PullRequest) string {
	description := ""
	if pr.Description != nil {
		description = *pr.Description
	}

	return fmt.Sprintf(`You are an expert code reviewer. Review this pull request diff and provide feedback.

PR Title: %s
PR Description: %s

Diff:
%s

Provide:
1. Security concerns (if any)
2. Performance issues (if any)
3. Code quality suggestions
4. Overall assessment (Approve / Request Changes)

Be concise and constructive.`, pr.Title, description, sampleDiff)
}

func descriptionPrompt(commits []string, sourceBranch, targetBranch string) string {
	lines := make([]string, len(commits))
	for i, msg := range commits {
		lines[i] = fmt.Sprintf("%d. %s", i+1, msg)
	}

	return fmt.Sprintf(`Generate a professional pull request description based on these commits:

%s

Source branch: %s
Target branch: %s

Format:
## What changed
[Brief overview]

## Why
[Motivation]

## Testing
[How to test]

Keep it concise and professional.`, strings.Join(lines, "\n"), sourceBranch, targetBranch)
}

func explainPrompt(email, action, resourceType, resourceID string, allowed bool) string {
	can, result := "CANNOT", "DENIED"
	if allowed {
		can, result = "CAN", "ALLOWED"
	}

	return fmt.Sprintf(`Explain in simple terms why a user %s perform this action:

User: %s
Action: %s
Resource: %s/%s
Result: %s

Context:
- GitHub-style permission system
- Users can have direct access or inherit via teams
- Some actions require specific roles (e.g., admin for deletion)

Provide a friendly explanation suitable for a developer.`, can, email, action, resourceType, resourceID, result)
}

func triagePrompt(title, body string) string {
	return fmt.Sprintf(`Categorize this GitHub issue:

Title: %s
Body: %s

Provide:
1. Category (bug / feature / documentation / question)
2. Priority (low / medium / high / critical)
3. Suggested labels (max 3)
4. Brief reasoning

Format as JSON:
{
  "category": "...",
  "priority": "...",
  "labels": ["...", "..."],
  "reasoning": "..."
}`, title, body)
}
