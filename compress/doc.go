// Package compress provides compression and decompression codecs for AHDA block payloads.
//
// This package offers multiple general-purpose compression algorithms applied to a
// block's already-compact bitmap+flags payload, after the bitmap codec's own
// run-length optimization has already exploited the structure specific to
// (query, target) index sets.
//
// # Overview
//
// AHDA applies a two-stage compression strategy:
//
//  1. **Encoding**: Exploits structure in the data (bitmap run-length spans, varint flags)
//  2. **Compression**: Further reduces encoded data using general-purpose algorithms
//
// The compress package implements the second stage, supporting multiple algorithms:
//   - Deflate: Raw DEFLATE, the codec AHDA block payloads use on disk
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)  // Returns data unchanged
//	original, _ := codec.Decompress(compressed)  // Returns data unchanged
//
// Use when:
//   - The block payload is already well-compressed by the bitmap encoding
//   - CPU is more critical than storage
//   - Data is incompressible (random, encrypted)
//
// **Zstandard (Zstd)** (format.CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)  // Best compression ratio
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Excellent (typically 2-4x on top of the bitmap encoding)
//   - Speed: Moderate (compression: ~400 MB/s, decompression: ~1000 MB/s)
//   - Memory: ~2-4 MB for compression, ~1-2 MB for decompression
//   - Latency: Medium (adds ~0.5-2ms for typical block payloads)
//
// Use when:
//   - Storage cost is the primary concern
//   - Network bandwidth is limited
//   - Can tolerate moderate compression overhead
//
// Best for:
//   - Sparse bitmap payloads with few runs
//   - Large flag catalogues (query names, target names)
//   - Cold storage / archival of pseudoalignment results
//
// **S2 (Snappy Alternative)** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)  // Fast with good compression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Good (typically 1.5-2.5x on top of the bitmap encoding)
//   - Speed: Fast (compression: ~1000 MB/s, decompression: ~2000 MB/s)
//   - Memory: ~256KB for compression, ~64KB for decompression
//   - Latency: Low (adds ~0.2-0.5ms for typical block payloads)
//
// Use when:
//   - Need a balance between compression and speed
//   - Latency is important
//   - Moderate storage savings are acceptable
//
// Best for:
//   - Streaming encode/decode pipelines
//   - Interactive query tools reading AHDA files on demand
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)  // Very fast decompression
//	original, _ := codec.Decompress(compressed)
//
// Characteristics:
//   - Compression: Moderate (typically 1.3-2x on top of the bitmap encoding)
//   - Speed: Very fast decompression (~3000 MB/s), moderate compression (~800 MB/s)
//   - Memory: ~64KB for compression, ~16KB for decompression
//   - Latency: Very low (adds ~0.1-0.3ms for typical block payloads)
//
// Use when:
//   - Read performance is critical
//   - Decompression speed matters more than compression ratio
//   - Low latency is required
//
// Best for:
//   - Read-heavy decode workloads
//   - Low-latency conversion pipelines
//
// # Algorithm Selection Guide
//
// **Choose based on workload**:
//
// | Workload Type          | Recommended | Reason                              |
// |------------------------|-------------|--------------------------------------|
// | Storage-constrained    | Zstd        | Best compression ratio              |
// | Streaming conversion   | S2          | Balanced speed and compression      |
// | Decode-heavy           | LZ4         | Fastest decompression                |
// | CPU-constrained        | None        | No compression overhead             |
// | Cold storage/archival  | Zstd        | Maximize space savings              |
// | Interactive tooling    | LZ4 or S2   | Minimize latency                    |
// | Network transmission   | Zstd        | Reduce bandwidth usage              |
//
// # Memory Management
//
// The Deflate and LZ4 codecs pool their compressor state, and the Zstd codec
// pools both its encoders and decoders; NoOp and S2 keep no pooled state.
// Decompression output buffers are sized by each codec from the compressed
// input itself; no codec reads a declared size from a block header.
//
// Memory overhead:
//   - NoOp: Zero overhead
//   - LZ4: ~64KB compression, ~16KB decompression
//   - S2: ~256KB compression, ~64KB decompression
//   - Zstd: ~2-4MB compression, ~1-2MB decompression
//
// # Thread Safety
//
// All codec implementations are thread-safe and can be safely shared across goroutines.
// However, for best performance, consider using a codec per goroutine to avoid
// internal lock contention.
//
// # Error Handling
//
// Compression errors are rare but can occur:
//   - Input too large (exceeds algorithm limits)
//   - Memory allocation failure
//
// Decompression errors are more common:
//   - Corrupted compressed data
//   - Invalid compression format
//   - Decompressed size exceeds limits
//   - Checksum validation failure (algorithm-dependent)
//
// Zstd wraps its decompression errors with context; the other codecs return
// the underlying library's errors unchanged.
//
// # Best Practices
//
//  1. **Profile your workload**: Different algorithms excel at different scenarios
//  2. **Consider total cost**: Factor in CPU, memory, storage, and network
//  3. **Use appropriate levels**: Higher compression levels may not be worth the CPU cost
//  4. **Test with real data**: Synthetic benchmarks may not represent your pseudoalignment data
//  5. **Cache decompressors**: Create once, reuse many times
//
// # Double Compression
//
// AHDA block payloads are, per the on-disk format, deflated twice in sequence
// (DeflateTwice, called by container.PackBlock) and inflated twice on decode
// (InflateTwice, called by container.UnpackBlock). The other codecs in this
// package are not used for block payloads. This quirk is preserved
// bit-for-bit for wire compatibility, even though the second pass yields
// diminishing returns on already-compressed data.
package compress
