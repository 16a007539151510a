package cms

// GROQ projections against the content repository. Image references
// are dereferenced to plain URLs so the rest of the service never sees
// asset documents.

const productListQuery = `*[_type == "product" && isAvailable == true] | order(_createdAt desc) {
  _id,
  title,
  slug,
  shortDescription,
  price,
  "mainImageUrl": mainImage.asset->url,
  tags,
  festivalAttribution,
  hasVariants,
  variants[] {
    priceAdjustment,
    inventory,
    isAvailable
  }
}`

const productBySlugQuery = `*[_type == "product" && slug.current == $slug][0] {
  _id,
  title,
  slug,
  description,
  shortDescription,
  price,
  compareAtPrice,
  inventory,
  "mainImageUrl": mainImage.asset->url,
  "galleryImages": gallery[].asset->url,
  tags,
  festivalAttribution,
  instagramPost,
  hasVariants,
  variantOptions,
  variants[] {
    sku,
    name,
    size,
    color,
    material,
    style,
    priceAdjustment,
    inventory,
    isAvailable,
    "variantImageUrl": variantImage.asset->url
  },
  materials,
  careInstructions,
  timeToMake,
  artistNotes,
  isOneOfAKind,
  isAvailable
}`

const brandSettingsQuery = `*[_type == "brandSettings"][0] {
  "logoUrl": logo.asset->url,
  logoText,
  logoIcon,
  "primaryColor": primaryColor.hex,
  "secondaryColor": secondaryColor.hex,
  "backgroundColor": backgroundColor.hex,
  "sectionBackgroundColor": sectionBackgroundColor.hex,
  heroTitle,
  heroSubtitle,
  "heroBackgroundImageUrl": heroBackgroundImage.asset->url,
  "heroImages": heroImages[] {
    "url": asset->url,
    alt
  },
  themeStyle,
  buttonStyle,
  headerFont,
  bodyFont,
  fontWeightStyle,
  featuredProducts[]-> {
    _id,
    title,
    slug,
    shortDescription,
    "mainImageUrl": mainImage.asset->url,
    price,
    tags,
    festivalAttribution,
    hasVariants,
    variants[] {
      priceAdjustment,
      inventory,
      isAvailable
    }
  }
}`

const homepageContentQuery = `*[_type == "homepageContent"][0] {
  valuesSectionTitle,
  values[] {
    emoji,
    title,
    description
  },
  collectionsSectionTitle,
  collections[] {
    emoji,
    title,
    description,
    linkUrl
  },
  primaryButtonText,
  primaryButtonUrl,
  secondaryButtonText,
  secondaryButtonUrl,
  footerDescription
}`

const aboutPageContentQuery = `*[_type == "aboutPageContent"][0] {
  pageTitle,
  pageSubtitle,
  storyTitle,
  storyContent[] {
    paragraph
  },
  values[] {
    emoji,
    title,
    description
  },
  specialSectionTitle,
  specialItems[] {
    icon,
    title,
    description
  },
  ctaTitle,
  ctaDescription,
  primaryButtonText,
  primaryButtonUrl,
  secondaryButtonText,
  secondaryButtonUrl
}`

const linksPageContentQuery = `*[_type == "linksPageContent"][0] {
  pageTitle,
  pageDescription,
  linkCategories[] {
    title,
    emoji,
    links[] {
      name,
      url,
      description
    }
  },
  ctaTitle,
  ctaDescription,
  ctaButtonText,
  ctaButtonUrl,
  disclaimerText
}`
