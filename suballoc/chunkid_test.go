package suballoc

import "testing"

func TestChunkID_ZipUnzip(t *testing.T) {
	tests := []struct {
		name  string
		index slotIndex
		gen   generation
	}{
		{"zero", 0, 0},
		{"index only", 42, 0},
		{"generation only", 0, 5},
		{"both", 123, 456},
		{"max index", 0xFFFFFFFF, 0},
		{"max generation", 0, 0xFFFFFFFF},
		{"max both", 0xFFFFFFFF, 0xFFFFFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ZipChunkID(tt.index, tt.gen)
			gotIndex, gotGen := id.Unzip()
			if gotIndex != tt.index {
				t.Errorf("ZipChunkID(%d, %d).Unzip() index = %d, want %d", tt.index, tt.gen, gotIndex, tt.index)
			}
			if gotGen != tt.gen {
				t.Errorf("ZipChunkID(%d, %d).Unzip() generation = %d, want %d", tt.index, tt.gen, gotGen, tt.gen)
			}
			if id.Index() != tt.index {
				t.Errorf("Index() = %d, want %d", id.Index(), tt.index)
			}
			if id.Generation() != tt.gen {
				t.Errorf("Generation() = %d, want %d", id.Generation(), tt.gen)
			}
		})
	}
}

func TestChunkID_String(t *testing.T) {
	tests := []struct {
		id   ChunkID
		want string
	}{
		{0, "ChunkID(0,0)"},
		{ZipChunkID(42, 5), "ChunkID(42,5)"},
		{ZipChunkID(0xFFFFFFFF, 0xFFFFFFFF), "ChunkID(4294967295,4294967295)"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("ChunkID.String() = %q, want %q", got, tt.want)
		}
	}
}
