package fuzzytime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeSpanToFuzzyTimeString(t *testing.T) {
	assert.Equal(t, "just now", TimeSpanToFuzzyTimeString(30*time.Second))
	assert.Equal(t, "a minute ago", TimeSpanToFuzzyTimeString(90*time.Second))
	assert.Equal(t, "5 minutes ago", TimeSpanToFuzzyTimeString(5*time.Minute))
	assert.Equal(t, "an hour ago", TimeSpanToFuzzyTimeString(70*time.Minute))
	assert.Equal(t, "5 hours ago", TimeSpanToFuzzyTimeString(5*time.Hour))
	assert.Equal(t, "a day ago", TimeSpanToFuzzyTimeString(30*time.Hour))
	assert.Equal(t, "3 days ago", TimeSpanToFuzzyTimeString(3*24*time.Hour))
	assert.Equal(t, "a week ago", TimeSpanToFuzzyTimeString(8*24*time.Hour))
	assert.Equal(t, "3 weeks ago", TimeSpanToFuzzyTimeString(22*24*time.Hour))
	assert.Equal(t, "a month ago", TimeSpanToFuzzyTimeString(35*24*time.Hour))
	assert.Equal(t, "11 months ago", TimeSpanToFuzzyTimeString(350*24*time.Hour))
	assert.Equal(t, "a year ago", TimeSpanToFuzzyTimeString(400*24*time.Hour))
	assert.Equal(t, "2 years ago", TimeSpanToFuzzyTimeString(800*24*time.Hour))
	assert.Equal(t, "just now", TimeSpanToFuzzyTimeString(-5*time.Minute))
}
