package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

const composeSample = `package com.example.ui

import androidx.compose.ui.test.junit4.createComposeRule
import org.junit.Rule
import org.junit.Test

class GreetingTest {
    @get:Rule
    val composeTestRule = createComposeRule()

    @Test
    fun showsGreeting() {
        composeTestRule.setContent { Greeting("Ada") }
        composeTestRule.onNodeWithText("Hello Ada").assertIsDisplayed()
    }

    @Test
    fun doLocalMath() {
        val label = "}"
        assertEquals(4, 2 + 2)
    }

    @Test
    fun ` + "`greets {user} by name`" + `() {
        val template = "${"$"}{user.name} }"
        composeTestRule.onNode(hasText("Hi"))
    }
}
`

func sourceNames(methods []m.TestMethod) []string {
	names := make([]string, 0, len(methods))
	for _, method := range methods {
		names = append(names, method.Name)
	}

	return names
}

func TestExtractTestMethods_Kotlin(t *testing.T) {
	file := m.SourceFile{Path: "app/src/test/java/com/example/ui/GreetingTest.kt", Content: composeSample}

	methods := ExtractTestMethods(file)
	require.Len(t, methods, 3)

	assert.Equal(t, []string{"showsGreeting", "doLocalMath", "greets {user} by name"}, sourceNames(methods))
	assert.True(t, methods[0].UI)
	assert.False(t, methods[1].UI)
	assert.True(t, methods[2].UI)

	assert.Equal(t, []string{"    @Test"}, methods[0].Annotations)
	assert.Equal(t, file.Path, methods[0].File)
	assert.Equal(t, 11, methods[0].Body.Start)
	assert.Equal(t, 16, methods[0].Body.End)

	ui := ExtractUITestMethods(file)
	assert.Equal(t, []string{"showsGreeting", "greets {user} by name"}, sourceNames(ui))
}

func TestExtractTestMethods_Java(t *testing.T) {
	src := `package com.example;

import static androidx.test.espresso.Espresso.onView;

public class SettingsTest {
    @Test
    public void togglesTheme() throws Exception {
        onView(withId(R.id.theme)).perform(click());
    }

    @Test
    public void parsesVersion() {
        assertEquals("{1}", parse("1"));
    }
}
`

	methods := ExtractTestMethods(m.SourceFile{Path: "SettingsTest.java", Content: src})
	require.Len(t, methods, 2)
	assert.Equal(t, "togglesTheme", methods[0].Name)
	assert.True(t, methods[0].UI)
	assert.Equal(t, "parsesVersion", methods[1].Name)
	assert.False(t, methods[1].UI)
}

func TestExtractTestMethods_AnnotationEdgeCases(t *testing.T) {
	t.Run("dangling annotation is discarded", func(t *testing.T) {
		src := "@Test\n@Test\nfun onlyOne() {\n    onView(withText(\"x\"))\n}\n"

		methods := ExtractTestMethods(m.SourceFile{Path: "A.kt", Content: src})
		require.Len(t, methods, 1)
		assert.Equal(t, "onlyOne", methods[0].Name)
		assert.Equal(t, 2, methods[0].Body.Start)
	})

	t.Run("annotation and declaration on one line", func(t *testing.T) {
		src := "@Test fun inline() { composeRule.setContent {} }\n"

		methods := ExtractTestMethods(m.SourceFile{Path: "A.kt", Content: src})
		require.Len(t, methods, 1)
		assert.Equal(t, "inline", methods[0].Name)
		assert.Equal(t, []string{"@Test fun inline() { composeRule.setContent {} }"}, methods[0].Annotations)
		assert.True(t, methods[0].UI)
	})

	t.Run("trailing annotation without declaration", func(t *testing.T) {
		methods := ExtractTestMethods(m.SourceFile{Path: "A.kt", Content: "class A {\n    @Test\n}\n"})
		assert.Empty(t, methods)
	})

	t.Run("windows line endings", func(t *testing.T) {
		src := "@Test\r\nfun crlf() {\r\n    onNode(hasText(\"a\"))\r\n}\r\n"

		methods := ExtractTestMethods(m.SourceFile{Path: "A.kt", Content: src})
		require.Len(t, methods, 1)
		assert.Equal(t, "crlf", methods[0].Name)
		assert.True(t, methods[0].UI)
	})
}

func TestLooksLikeUITest(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"composeTestRule.setContent {}", true},
		{"composeRule.onRoot()", true},
		{"onNode(hasTestTag(\"x\"))", true},
		{"onAllNodes(isRoot())", true},
		{"node.performClick ()", true},
		{"node.assertIsDisplayed()", true},
		{"onView(withId(1))", true},
		{"onData(anything())", true},
		{"pressBack()", true},
		{"ViewActions.click()", true},
		{"assertEquals(1, 1)", false},
		{"val pressBackCount = 0", false},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikeUITest(tt.body))
		})
	}
}

func TestIsTestSourcePath(t *testing.T) {
	tests := []struct {
		path m.Path
		want bool
	}{
		{"app/src/test/java/a/FooTest.kt", true},
		{"app/src/androidTest/java/a/FooTest.java", false},
		{"app/src/test/java/a/FooTest.KT", false},
		{"/abs/app/src/testStandard/Foo.kt", true},
		{"app/src/main/java/a/Foo.kt", false},
		{"app/src/test/java/a/notes.txt", false},
		{"test/Foo.kt", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, IsTestSourcePath(tt.path))
		})
	}
}

func TestIsUITestSource(t *testing.T) {
	assert.True(t, IsUITestSource("import androidx.compose.ui.test.onNodeWithText\n@Test fun a() {}"))
	assert.True(t, IsUITestSource("import androidx.test.espresso.Espresso\n@Test public void a() {}"))
	assert.False(t, IsUITestSource("import androidx.compose.ui.test.onNodeWithText\nfun a() {}"))
	assert.False(t, IsUITestSource("import org.junit.Test\n@Test fun a() {}"))
}

func TestExtractPackage(t *testing.T) {
	assert.Equal(t, "com.example.ui", ExtractPackage(composeSample))
	assert.Equal(t, "com.example", ExtractPackage("// header\npackage com.example;\n"))
	assert.Empty(t, ExtractPackage("class NoPackage"))
}
