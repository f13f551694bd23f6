package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "droidtest.dev/pkg/droidtest/internal/model"
)

const kotlinPruneSample = `package com.example

class LoginTest {
    @get:Rule
    val composeTestRule = createComposeRule()

    @Before
    fun setUp() {
        login = Login()
    }

    @Test
    fun keepMe() {
        composeTestRule.setContent { Login() }
    }

    @Test
    fun ` + "`drop me please`" + `() {
        val s = "}"
        check { s }
    }

    @Test
    @Ignore("flaky")
    fun dropIgnored() = runTest {
        delay(1)
    }

    @ParameterizedTest
    fun dropParam(): Unit {
    }

    @Composable
    fun Preview() {
        Login()
    }
}
`

func TestPruneTests_ExactOutput(t *testing.T) {
	src := "class A {\n    @Test\n    fun keep() {\n        a()\n    }\n\n    @Test\n    fun drop() {\n        b(\"}\")\n    }\n}\n"
	want := "class A {\n    @Test\n    fun keep() {\n        a()\n    }\n\n\n}\n"

	result := PruneTests(src, m.NewMethodSet("keep"), m.ExtKotlin)

	assert.Equal(t, want, result.Content)
	assert.Equal(t, []string{"keep"}, result.Kept)
	assert.Equal(t, []string{"drop"}, result.Removed)
}

func TestPruneTests_Kotlin(t *testing.T) {
	result := PruneTests(kotlinPruneSample, m.NewMethodSet("keepMe"), m.ExtKotlin)

	assert.Equal(t, []string{"keepMe"}, result.Kept)
	assert.Equal(t, []string{"drop me please", "dropIgnored", "dropParam"}, result.Removed)

	assert.Contains(t, result.Content, "    @Before\n    fun setUp() {\n        login = Login()\n    }\n")
	assert.Contains(t, result.Content, "    @Test\n    fun keepMe() {\n        composeTestRule.setContent { Login() }\n    }\n")
	assert.Contains(t, result.Content, "    @Composable\n    fun Preview() {\n        Login()\n    }\n}\n")
	assert.Contains(t, result.Content, "@get:Rule")

	assert.NotContains(t, result.Content, "drop me please")
	assert.NotContains(t, result.Content, "@Ignore")
	assert.NotContains(t, result.Content, "runTest")
	assert.NotContains(t, result.Content, "@ParameterizedTest")
}

func TestPruneTests_Idempotent(t *testing.T) {
	keep := m.NewMethodSet("keepMe")

	first := PruneTests(kotlinPruneSample, keep, m.ExtKotlin)
	second := PruneTests(first.Content, keep, m.ExtKotlin)

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, []string{"keepMe"}, second.Kept)
	assert.Empty(t, second.Removed)
}

func TestPruneTests_KeepAll(t *testing.T) {
	keep := m.NewMethodSet("keepMe", "drop me please", "dropIgnored", "dropParam")

	result := PruneTests(kotlinPruneSample, keep, m.ExtKotlin)

	assert.Equal(t, kotlinPruneSample, result.Content)
	assert.Empty(t, result.Removed)
	assert.Len(t, result.Kept, 4)
}

func TestPruneTests_Java(t *testing.T) {
	src := `public class FooTest {
    @Before
    public void setUp() throws Exception {
        init();
    }

    @Test
    public void keepJava() {
        onView(withId(1));
    }

    @Test(expected = IllegalStateException.class)
    public void dropJava() throws IOException, InterruptedException {
        if (x) { throw new IllegalStateException("}"); }
    }

    @org.junit.Test
    public static void dropQualified() {
        char c = '{';
    }
}
`

	result := PruneTests(src, m.NewMethodSet("keepJava"), m.ExtJava)

	assert.Equal(t, []string{"keepJava"}, result.Kept)
	assert.Equal(t, []string{"dropJava", "dropQualified"}, result.Removed)
	assert.Contains(t, result.Content, "public void setUp() throws Exception {\n        init();\n    }")
	assert.Contains(t, result.Content, "public void keepJava() {")
	assert.NotContains(t, result.Content, "dropJava")
	assert.NotContains(t, result.Content, "dropQualified")
	assert.Contains(t, result.Content, "\n}\n")
}

func TestPruneTests_UnbalancedBracesRemoveToEnd(t *testing.T) {
	src := "class A {\n    @Test\n    fun broken() {\n        a(\n"

	result := PruneTests(src, m.NewMethodSet(), m.ExtKotlin)

	require.Equal(t, []string{"broken"}, result.Removed)
	assert.Equal(t, "class A {\n", result.Content)
}

func TestPruneTests_NoTests(t *testing.T) {
	src := "class Helper {\n    fun util() {}\n}\n"

	result := PruneTests(src, m.NewMethodSet(), m.ExtKotlin)

	assert.Equal(t, src, result.Content)
	assert.Empty(t, result.Kept)
	assert.Empty(t, result.Removed)
}

func TestPruneTests_SkipsBlockCommentedTest(t *testing.T) {
	src := "class FooTest {\n    /*\n    @Test\n    fun disabled() {\n    }\n    */\n" +
		"    @Test\n    fun wanted() {\n        composeTestRule.onNode(x)\n    }\n\n" +
		"    @Test\n    fun other() {\n    }\n}\n"
	want := "class FooTest {\n    /*\n    @Test\n    fun disabled() {\n    }\n    */\n" +
		"    @Test\n    fun wanted() {\n        composeTestRule.onNode(x)\n    }\n\n\n}\n"

	result := PruneTests(src, m.NewMethodSet("wanted"), m.ExtKotlin)

	assert.Equal(t, want, result.Content)
	assert.Equal(t, []string{"wanted"}, result.Kept)
	assert.Equal(t, []string{"other"}, result.Removed)

	again := PruneTests(result.Content, m.NewMethodSet("wanted"), m.ExtKotlin)
	assert.Equal(t, result.Content, again.Content)
}

func TestPruneTests_SkipsTestInsideRawString(t *testing.T) {
	src := "class GenTest {\n    private val fixture = \"\"\"\n        @Test\n        fun generated() {\n        }\n    \"\"\"\n\n" +
		"    @Test\n    fun dropped() {\n        check(fixture)\n    }\n}\n"
	want := "class GenTest {\n    private val fixture = \"\"\"\n        @Test\n        fun generated() {\n        }\n    \"\"\"\n\n\n}\n"

	result := PruneTests(src, m.NewMethodSet(), m.ExtKotlin)

	assert.Equal(t, want, result.Content)
	assert.Empty(t, result.Kept)
	assert.Equal(t, []string{"dropped"}, result.Removed)
}
