package repository

import (
	"fmt"

	"github.com/YourNeshama/java-maze-game/internal/domain/entities"
)

type questionSeed struct {
	text         string
	options      []string
	correctIndex int
	explanation  string
	difficulty   entities.Difficulty
}

var builtInSeeds = []questionSeed{
	// Easy
	{
		text:         "What is the output of: int x = 5 + 3; System.out.println(x);",
		options:      []string{"5", "8", "53", "Error"},
		correctIndex: 1,
		explanation:  "Basic arithmetic operation: 5 + 3 equals 8",
		difficulty:   entities.DifficultyEasy,
	},
	{
		text:         "Which keyword is used to declare a constant in Java?",
		options:      []string{"const", "final", "static", "constant"},
		correctIndex: 1,
		explanation:  "The 'final' keyword is used to declare constants in Java",
		difficulty:   entities.DifficultyEasy,
	},
	{
		text:         "What is the correct way to declare a String variable?",
		options:      []string{"string name;", "String name;", "str name;", "text name;"},
		correctIndex: 1,
		explanation:  "String is the correct class name for text in Java, and it starts with a capital S",
		difficulty:   entities.DifficultyEasy,
	},

	// Medium
	{
		text: "What is the difference between '==' and '.equals()' for String comparison?",
		options: []string{
			"They are the same",
			"'==' compares references, .equals() compares content",
			".equals() compares references, '==' compares content",
			"None of the above",
		},
		correctIndex: 1,
		explanation:  "'==' compares object references (memory addresses), while .equals() compares the actual content of Strings",
		difficulty:   entities.DifficultyMedium,
	},
	{
		text:         "What is the output of: for(int i=0; i<3; i++) { System.out.print(i); }",
		options:      []string{"123", "012", "1 2 3", "0 1 2"},
		correctIndex: 1,
		explanation:  "The loop starts at 0, runs while i is less than 3, and prints each number without spaces",
		difficulty:   entities.DifficultyMedium,
	},
	{
		text:         "Which collection type should you use for a dynamic size list?",
		options:      []string{"Array", "ArrayList", "Vector", "LinkedList"},
		correctIndex: 1,
		explanation:  "ArrayList provides dynamic sizing and is the most commonly used List implementation",
		difficulty:   entities.DifficultyMedium,
	},

	// Hard
	{
		text: "What is the output of:\n" +
			"try {\n" +
			"    throw new Exception();\n" +
			"} catch(Exception e) {\n" +
			"    System.out.print(\"1\");\n" +
			"} finally {\n" +
			"    System.out.print(\"2\");\n" +
			"}",
		options:      []string{"1", "2", "12", "Exception"},
		correctIndex: 2,
		explanation:  "The catch block executes when the exception is thrown, then the finally block always executes",
		difficulty:   entities.DifficultyHard,
	},
	{
		text:         "What is the time complexity of binary search?",
		options:      []string{"O(n)", "O(log n)", "O(n²)", "O(1)"},
		correctIndex: 1,
		explanation:  "Binary search has logarithmic time complexity as it halves the search space in each step",
		difficulty:   entities.DifficultyHard,
	},
	{
		text: "Which statement about abstract classes is correct?",
		options: []string{
			"They can be instantiated directly",
			"They can have both implemented and unimplemented methods",
			"They can be used to achieve multiple inheritance",
			"They must implement all methods from their interfaces",
		},
		correctIndex: 1,
		explanation:  "Abstract classes can have both concrete (implemented) and abstract (unimplemented) methods",
		difficulty:   entities.DifficultyHard,
	},
}

// BuiltInQuestions builds a fresh copy of the sample catalog:
// three questions for each difficulty.
// It panics if a literal is malformed, which is a programming error.
func BuiltInQuestions() []*entities.Question {
	questions := make([]*entities.Question, 0, len(builtInSeeds))
	for i, s := range builtInSeeds {
		q, err := entities.NewQuestion(s.text, s.options, s.correctIndex, s.explanation, s.difficulty)
		if err != nil {
			panic(fmt.Sprintf("built-in question %d: %v", i, err))
		}
		questions = append(questions, q)
	}
	return questions
}
