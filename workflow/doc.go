// Package workflow reads branch-workflow configuration from git config
// under the workflow.* namespace and expands branch-name format strings.
//
// Configuration keys (without the workflow. prefix):
//
//	ticket.prefix        prefix prepended to bare ticket numbers
//	ticket.urlPattern    URL template with a %(ticket) placeholder
//	project.name         explicit project name override
//	branch.localFormat   local branch name format, default "%(desc)"
//	branch.remoteFormat  remote branch name format,
//	                     default "%(type)/%(owner)/%(ticket)-%(desc)"
//	branches.priority    comma-separated branches to list first
//	branches.exclude     comma-separated glob patterns to hide
package workflow
