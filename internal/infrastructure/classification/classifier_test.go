package classification

import (
	"math"
	"testing"

	"stress-detection/configs"
	"stress-detection/internal/domain/models"
)

func testLabels() models.LabelSet {
	return models.LabelSet{"normal", "anxious", "stressed", "ptsd"}
}

func testClassifier() *Classifier {
	cfg := configs.DefaultConfig().Classifier
	return NewClassifier(&cfg, testLabels())
}

func TestClassifier_Rules(t *testing.T) {
	c := testClassifier()

	tests := []struct {
		name   string
		scaled models.ScaledVector
		want   string
	}{
		{
			name:   "all neutral defaults to normal",
			scaled: models.ScaledVector{0, 0, 0, 0, 0},
			want:   models.LabelNormal,
		},
		{
			name:   "severely suppressed hrv means ptsd",
			scaled: models.ScaledVector{0, 0, 0, 0, -1.5},
			want:   models.LabelPTSD,
		},
		{
			name:   "hrv at threshold falls through to arousal rule",
			scaled: models.ScaledVector{0, 0, 0, 0, -1.0},
			want:   models.LabelStressed,
		},
		{
			name:   "mildly low hrv alone is normal",
			scaled: models.ScaledVector{0, 0, 0, 0, -0.5},
			want:   models.LabelNormal,
		},
		{
			name:   "elevated arousal means stressed",
			scaled: models.ScaledVector{0, 0, 0, 1.2, 0},
			want:   models.LabelStressed,
		},
		{
			name:   "high beta power means stressed",
			scaled: models.ScaledVector{0, 0, 1.6, 0, 0},
			want:   models.LabelStressed,
		},
		{
			name:   "high theta power means anxious",
			scaled: models.ScaledVector{1.2, 0, 0, 0, 0},
			want:   models.LabelAnxious,
		},
		{
			name:   "theta exactly at threshold is normal",
			scaled: models.ScaledVector{1.0, 0, 0, 0, 0},
			want:   models.LabelNormal,
		},
		{
			name:   "ptsd rule wins over stressed by order",
			scaled: models.ScaledVector{0, 0, 2.0, 2.0, -1.5},
			want:   models.LabelPTSD,
		},
		{
			name:   "stressed rule wins over anxious by order",
			scaled: models.ScaledVector{1.5, 0, 1.6, 0, 0},
			want:   models.LabelStressed,
		},
		{
			name:   "documented example vector is stressed",
			scaled: models.ScaledVector{1.0131578947, 0.55, 1.635588, 1.80218452, 0.515},
			want:   models.LabelStressed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, scores := c.Classify(tt.scaled)

			if label != tt.want {
				t.Errorf("expected label %q, got %q", tt.want, label)
			}

			if scores[label] != 0.8 {
				t.Errorf("expected predicted confidence 0.8, got %v", scores[label])
			}
		})
	}
}

func TestClassifier_ConfidenceDistribution(t *testing.T) {
	c := testClassifier()

	label, scores := c.Classify(models.ScaledVector{0, 0, 0, 0, 0})

	// 置信度的键必须与标签集合完全一致
	if len(scores) != models.LabelCount {
		t.Fatalf("expected %d confidence entries, got %d", models.LabelCount, len(scores))
	}
	for _, name := range testLabels() {
		if _, ok := scores[name]; !ok {
			t.Errorf("missing confidence entry for label %q", name)
		}
	}

	// 总和为1.0（±1e-6）
	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("confidence scores sum to %v, expected 1.0", sum)
	}

	// 预测标签的置信度不低于任何其他标签
	for name, v := range scores {
		if v > scores[label] {
			t.Errorf("label %q has confidence %v above predicted %v", name, v, scores[label])
		}
	}

	// 剩余权重均分给其他三个标签
	rest := (1.0 - 0.8) / 3.0
	for name, v := range scores {
		if name == label {
			continue
		}
		if math.Abs(v-rest) > 1e-9 {
			t.Errorf("label %q: expected confidence %v, got %v", name, rest, v)
		}
	}
}

func TestClassifier_CustomWeight(t *testing.T) {
	cfg := configs.DefaultConfig().Classifier
	cfg.PredictedWeight = 0.6

	c := NewClassifier(&cfg, testLabels())

	label, scores := c.Classify(models.ScaledVector{0, 0, 0, 0, -2.0})

	if label != models.LabelPTSD {
		t.Fatalf("expected ptsd, got %q", label)
	}
	if scores[models.LabelPTSD] != 0.6 {
		t.Errorf("expected predicted confidence 0.6, got %v", scores[models.LabelPTSD])
	}

	sum := 0.0
	for _, v := range scores {
		sum += v
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("confidence scores sum to %v, expected 1.0", sum)
	}
}

func TestClassifier_Thresholds(t *testing.T) {
	c := testClassifier()

	thresholds := c.Thresholds()

	want := map[string]float64{
		"hrv_ptsd_max":         -1.0,
		"arousal_stressed_min": 1.0,
		"beta_stressed_min":    1.5,
		"theta_anxious_min":    1.0,
	}

	for key, value := range want {
		if thresholds[key] != value {
			t.Errorf("threshold %q: expected %v, got %v", key, value, thresholds[key])
		}
	}
}
