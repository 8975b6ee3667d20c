/*
Package module provides the building blocks of the d42 operation modules: a
module base with operation selector flags, and the create/read/update/delete
and search steps the resource modules have in common.

The individual resource modules live in sub-packages and register themselves
as [cli.ModulePlugin] plugins.
*/
package module
