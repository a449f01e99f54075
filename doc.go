// uitxt renders the text and big numerals of a game UI, designed to be
// used mainly with the Ebitengine game engine.
//
// Text is drawn with a small set of preconfigured styles ([White], [Red],
// [Slim] and [Little]), each with a left-to-right and a right-to-left
// font. Common usage depends only on a couple of types...
//
// First, you create a [Catalog] from a [Config]:
//   dirFlag := uitxt.NewDirectionFlag(uitxt.LeftToRight)
//   catalog, err := uitxt.NewCatalog(uitxt.DefaultConfig(), dirFlag)
//   if err != nil { ... }
//   defer catalog.Close()
//
// Then, you create a [Layout] and start drawing:
//   layout := uitxt.NewLayout(catalog)
//   layout.DrawBlock(screen, 16, 16, "Hello\nworld!", 0, uitxt.White, -1)
//
// Big numbers are drawn from a sprite sheet with a [NumeralRenderer].
//
// Without Ebitengine, the package can be compiled with the gtxt build
// tag (-tags gtxt), and then it draws on standard [image/draw.Image]
// targets instead.
package uitxt
