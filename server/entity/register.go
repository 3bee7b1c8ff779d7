package entity

// Kinds lists every entity Kind() string this package can produce, for use
// by persistence and protocol code that needs to dispatch on the string
// without importing every concrete constructor.
var Kinds = []string{
	"item", "falling_block", "tnt", "boat", "painting", "fishing_hook",
	"minecart", "lightning_bolt",
	"arrow", "snowball", "egg", "fireball",
	"player", "pig", "zombie", "skeleton", "creeper", "spider", "slime", "ghast",
}
