package glapi

const (
	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
	CONTEXT_LOST                  = 0x0507

	FALSE = 0
	TRUE  = 1

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	CULL_FACE  = 0x0B44
	DEPTH_TEST = 0x0B71
	BLEND      = 0x0BE2

	UNSIGNED_BYTE = 0x1401
	FLOAT         = 0x1406

	DEPTH_COMPONENT = 0x1902
	RED             = 0x1903
	RGB             = 0x1907
	RGBA            = 0x1908
	LUMINANCE       = 0x1909
	LUMINANCE_ALPHA = 0x190A
	RG              = 0x8227
	DEPTH_STENCIL   = 0x84F9

	NEAREST            = 0x2600
	LINEAR             = 0x2601
	TEXTURE_2D         = 0x0DE1
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	REPEAT             = 0x2901
	CLAMP_TO_EDGE      = 0x812F
	TEXTURE0           = 0x84C0
	UNPACK_ALIGNMENT   = 0x0CF5

	ARRAY_BUFFER = 0x8892
	STREAM_DRAW  = 0x88E0
	STATIC_DRAW  = 0x88E4
	DYNAMIC_DRAW = 0x88E8

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84

	DEPTH_COMPONENT16  = 0x81A5
	DEPTH_COMPONENT24  = 0x81A6
	DEPTH_COMPONENT32F = 0x8CAC
	DEPTH24_STENCIL8   = 0x88F0
	DEPTH32F_STENCIL8  = 0x8CAD
	STENCIL_INDEX8     = 0x8D48

	FRAMEBUFFER              = 0x8D40
	RENDERBUFFER             = 0x8D41
	FRAMEBUFFER_COMPLETE     = 0x8CD5
	COLOR_ATTACHMENT0        = 0x8CE0
	DEPTH_ATTACHMENT         = 0x8D00
	STENCIL_ATTACHMENT       = 0x8D20
	DEPTH_STENCIL_ATTACHMENT = 0x821A
)
