package content

import "github.com/devpath/tutorial-platform/internal/core/domain"

var builtinTutorials = []domain.Tutorial{
	{
		ID:          "javascript-variables",
		Title:       "JavaScript Variables and Data Types",
		Description: "Learn how variables work in JavaScript and understand the different data types available.",
		Duration:    "20 min",
		Level:       "Beginner",
		Sections: []domain.Section{
			{
				Title: "Introduction to Variables",
				Content: "# Introduction to Variables\n\n" +
					"Variables are containers for storing data values. In JavaScript, there are three ways to declare variables:\n\n" +
					"- `var`: The traditional way to declare variables (function scoped)\n" +
					"- `let`: Introduced in ES6 for block-scoped variables that can be reassigned\n" +
					"- `const`: Also introduced in ES6 for block-scoped variables that cannot be reassigned\n\n" +
					"Best practice is to use `const` by default, and only use `let` when you know the variable will need to be reassigned.\n",
			},
			{
				Title: "Data Types in JavaScript",
				Content: "# Data Types in JavaScript\n\n" +
					"JavaScript has several built-in data types: primitives (String, Number, Boolean, Undefined, Null, Symbol, BigInt) " +
					"and reference types (Object, Array, Function).\n\n" +
					"```javascript\nconst person = { name: \"John\", age: 30 };\nconst colors = [\"red\", \"green\", \"blue\"];\n```\n",
			},
			{
				Title: "Variable Scope",
				Content: "# Variable Scope\n\n" +
					"`let` and `const` are block-scoped; `var` ignores block scope. Inner functions have access to variables " +
					"declared in their outer functions (lexical scope).\n",
			},
		},
		Quiz: []domain.Question{
			{
				Prompt:  "Which keyword is used to declare a constant variable in JavaScript?",
				Options: []string{"var", "let", "const", "fixed"},
				Answer:  2,
			},
			{
				Prompt:  "What is the output of: typeof [1,2,3]?",
				Options: []string{"array", "object", "list", "undefined"},
				Answer:  1,
			},
			{
				Prompt:  "Which variable declaration is block-scoped?",
				Options: []string{"var", "let", "both var and let", "neither var nor let"},
				Answer:  1,
			},
		},
	},
	{
		ID:          "javascript-functions",
		Title:       "JavaScript Functions",
		Description: "Learn how to create and use functions in JavaScript.",
		Duration:    "25 min",
		Level:       "Beginner",
		Sections: []domain.Section{
			{
				Title: "Introduction to Functions",
				Content: "# Introduction to Functions\n\n" +
					"Functions are reusable blocks of code designed to perform specific tasks.\n\n" +
					"```javascript\nfunction greet(name) {\n  return \"Hello, \" + name + \"!\";\n}\n```\n\n" +
					"Function expressions store a function in a variable; arrow functions (ES6) offer a shorter syntax:\n\n" +
					"```javascript\nconst add = (a, b) => a + b;\n```\n",
			},
		},
		Quiz: []domain.Question{
			{
				Prompt: "Which of the following is an arrow function?",
				Options: []string{
					"function(a, b) { return a + b; }",
					"const add = function(a, b) { return a + b; }",
					"const add = (a, b) => a + b;",
					"function add(a, b) => { return a + b; }",
				},
				Answer: 2,
			},
		},
	},
}
